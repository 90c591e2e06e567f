package league

import "github.com/mcoot/hoopsclient/internal/model"

// seedPlayers is the market every fresh store starts with
func seedPlayers() []model.Player {
	return []model.Player{
		player(1, "LeBron James", model.PositionSmallForward, "Los Angeles Lakers", "42.5", 1850, stats("25.7", "7.3", "7.5", "1.3", "0.5")),
		player(2, "Stephen Curry", model.PositionPointGuard, "Golden State Warriors", "45.0", 1920, stats("29.4", "6.1", "6.3", "0.9", "0.4")),
		player(3, "Giannis Antetokounmpo", model.PositionPowerForward, "Milwaukee Bucks", "44.0", 1880, stats("31.1", "11.8", "5.7", "0.8", "1.2")),
		player(4, "Kevin Durant", model.PositionPowerForward, "Phoenix Suns", "40.0", 1750, stats("29.1", "6.7", "5.0", "0.9", "1.1")),
		player(5, "Nikola Jokic", model.PositionCenter, "Denver Nuggets", "43.0", 1900, stats("24.5", "11.8", "9.8", "1.3", "0.7")),
		player(6, "Joel Embiid", model.PositionCenter, "Philadelphia 76ers", "41.5", 1800, stats("33.1", "10.2", "4.2", "1.0", "1.7")),
		player(7, "Luka Doncic", model.PositionPointGuard, "Dallas Mavericks", "43.5", 1870, stats("32.4", "8.6", "8.0", "1.4", "0.5")),
		player(8, "Jayson Tatum", model.PositionSmallForward, "Boston Celtics", "38.0", 1680, stats("30.1", "8.8", "4.6", "1.1", "0.7")),
		player(9, "Damian Lillard", model.PositionPointGuard, "Milwaukee Bucks", "37.5", 1650, stats("32.2", "4.8", "7.3", "0.9", "0.3")),
		player(10, "Anthony Davis", model.PositionPowerForward, "Los Angeles Lakers", "39.0", 1720, stats("25.9", "12.5", "3.1", "1.1", "2.0")),
		player(11, "Devin Booker", model.PositionShootingGuard, "Phoenix Suns", "36.0", 1590, stats("27.8", "4.5", "6.2", "0.9", "0.3")),
		player(12, "Anthony Edwards", model.PositionShootingGuard, "Minnesota Timberwolves", "34.0", 1540, stats("25.9", "5.4", "5.1", "1.3", "0.5")),
	}
}

var positionNames = map[string]string{
	model.PositionPointGuard:    "Point Guard",
	model.PositionShootingGuard: "Shooting Guard",
	model.PositionSmallForward:  "Small Forward",
	model.PositionPowerForward:  "Power Forward",
	model.PositionCenter:        "Center",
}

func player(id int, name, pos, team, price string, points int, s model.PlayerStats) model.Player {
	return model.Player{
		ID:            id,
		Name:          name,
		Position:      positionNames[pos],
		PositionShort: pos,
		Team:          team,
		Price:         price,
		Points:        points,
		Photo:         "https://via.placeholder.com/100",
		Stats:         s,
	}
}

func stats(points, rebounds, assists, steals, blocks string) model.PlayerStats {
	return model.PlayerStats{
		Points:   points,
		Rebounds: rebounds,
		Assists:  assists,
		Steals:   steals,
		Blocks:   blocks,
	}
}
