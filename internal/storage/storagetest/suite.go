// Package storagetest holds behaviour tests shared by every storage backend.
package storagetest

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hoopsclient/internal/model"
	"github.com/mcoot/hoopsclient/internal/storage"
)

// Suite runs the common storage contract. Embed it and assign Storage in SetupTest.
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

func (s *Suite) TestGetMissingKey() {
	_, err := s.Storage.Get(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *Suite) TestSetAndGet() {
	s.Require().NoError(s.Storage.Set(s.Ctx, storage.KeyToken, "tok123"))

	v, err := s.Storage.Get(s.Ctx, storage.KeyToken)
	s.Require().NoError(err)
	s.Equal("tok123", v)
}

func (s *Suite) TestSetOverwrites() {
	s.Require().NoError(s.Storage.Set(s.Ctx, storage.KeyToken, "old"))
	s.Require().NoError(s.Storage.Set(s.Ctx, storage.KeyToken, "new"))

	v, err := s.Storage.Get(s.Ctx, storage.KeyToken)
	s.Require().NoError(err)
	s.Equal("new", v)
}

func (s *Suite) TestDelete() {
	s.Require().NoError(s.Storage.Set(s.Ctx, storage.KeyUser, `{"id":"u1"}`))
	s.Require().NoError(s.Storage.Delete(s.Ctx, storage.KeyUser))

	_, err := s.Storage.Get(s.Ctx, storage.KeyUser)
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *Suite) TestDeleteMissingKey() {
	s.NoError(s.Storage.Delete(s.Ctx, "nonexistent"))
}

func (s *Suite) TestKeysAreIndependent() {
	s.Require().NoError(s.Storage.Set(s.Ctx, storage.KeyToken, "tok"))
	s.Require().NoError(s.Storage.Set(s.Ctx, storage.KeyUser, "user"))
	s.Require().NoError(s.Storage.Delete(s.Ctx, storage.KeyToken))

	v, err := s.Storage.Get(s.Ctx, storage.KeyUser)
	s.Require().NoError(err)
	s.Equal("user", v)
}

func (s *Suite) TestPreservesJSONValues() {
	value := `{"id":"u1","username":"Bob","email":"a@b.com","teamName":"Fast Break FC"}`
	s.Require().NoError(s.Storage.Set(s.Ctx, storage.KeyUser, value))

	v, err := s.Storage.Get(s.Ctx, storage.KeyUser)
	s.Require().NoError(err)
	s.Equal(value, v)
}
