package model

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// UserIdentity is the authenticated user as the client knows it.
// It is also the JSON shape persisted under the auth_user key.
type UserIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	TeamName string `json:"teamName,omitempty"`
}

// UserPatch holds the fields to merge into a UserIdentity. Nil fields are left untouched.
type UserPatch struct {
	ID       *string
	Username *string
	Email    *string
	TeamName *string
}

// Apply returns u with every non-nil field of p copied over
func (p UserPatch) Apply(u UserIdentity) UserIdentity {
	if p.ID != nil {
		u.ID = *p.ID
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.TeamName != nil {
		u.TeamName = *p.TeamName
	}
	return u
}

// Field precedence used when normalizing server responses. The first key
// holding a non-empty value wins.
var (
	userIDKeys   = []string{"id", "_id", "userId"}
	usernameKeys = []string{"username", "name"}
	emailKeys    = []string{"email"}
	teamNameKeys = []string{"teamName", "team_name"}
	tokenKeys    = []string{"token", "access_token"}
	authUserKey  = "user"
)

// AuthPayload is the normalized body of a login or register response.
// Token is empty and User is nil when the server omitted them.
type AuthPayload struct {
	Token string
	User  *UserIdentity
}

// ParseAuthResponse normalizes a login/register response body.
// It only fails when the body is not a JSON object; missing token or user
// are reported through the zero values of AuthPayload.
func ParseAuthResponse(body []byte) (AuthPayload, error) {
	if !gjson.ValidBytes(body) {
		return AuthPayload{}, ErrMalformedAuthResponse
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return AuthPayload{}, fmt.Errorf("%w: expected object", ErrMalformedAuthResponse)
	}

	payload := AuthPayload{Token: ExtractToken(root)}

	if user := root.Get(authUserKey); user.IsObject() {
		u := NormalizeUser(user)
		payload.User = &u
	}

	return payload, nil
}

// ExtractToken returns the bearer token of an auth response (token, then access_token)
func ExtractToken(root gjson.Result) string {
	return firstString(root, tokenKeys)
}

// NormalizeUser maps a server user object onto UserIdentity.
//
// Precedence:
//
//	id       id, _id, userId
//	username username, name
//	email    email
//	teamName teamName, team_name
//
// Numeric values are rendered in their JSON form, so {"id": 42} yields "42".
func NormalizeUser(user gjson.Result) UserIdentity {
	return UserIdentity{
		ID:       firstString(user, userIDKeys),
		Username: firstString(user, usernameKeys),
		Email:    firstString(user, emailKeys),
		TeamName: firstString(user, teamNameKeys),
	}
}

func firstString(obj gjson.Result, keys []string) string {
	for _, key := range keys {
		v := obj.Get(gjson.Escape(key))
		switch v.Type {
		case gjson.String:
			if v.Str != "" {
				return v.Str
			}
		case gjson.Number:
			return v.Raw
		}
	}
	return ""
}
