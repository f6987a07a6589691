package redisstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/cognicore/artikel/pkg/artikel/internalerr"
	"github.com/cognicore/artikel/pkg/artikel/store"
	"github.com/cognicore/artikel/pkg/artikel/store/storetest"
	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

type StoreTestSuite struct {
	suite.Suite
	mock  redismock.ClientMock
	store *Store
}

func (s *StoreTestSuite) SetupTest() {
	db, mock := redismock.NewClientMock()
	s.mock = mock
	s.store = New(db, WithPrefix("test:"))
}

func (s *StoreTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *StoreTestSuite) TestLookupHit() {
	text := "He is actor."
	s.mock.ExpectHGetAll("test:" + store.Hash(text)).SetVal(map[string]string{
		text: `[{"start":6,"end":12,"replacements":["an actor","the actor"],"cause":"Missed article before noun group"}]`,
	})

	got, ok, err := storetest.Lookup(context.Background(), s.store, text)
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)
	assert.Equal(s.T(), text, got.Text)
	require.Len(s.T(), got.Suggestions, 1)
	assert.Equal(s.T(), 12, got.Suggestions[0].End)
}

func (s *StoreTestSuite) TestGetSortsEntries() {
	s.mock.ExpectHGetAll("test:k").SetVal(map[string]string{"b": "[]", "a": "[]"})

	b, err := s.store.Get(context.Background(), "k")
	require.NoError(s.T(), err)
	require.Len(s.T(), b, 2)
	assert.Equal(s.T(), "a", b[0].Text)
}

func (s *StoreTestSuite) TestGetMiss() {
	s.mock.ExpectHGetAll("test:k").SetVal(map[string]string{})

	b, err := s.store.Get(context.Background(), "k")
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), b)
}

func (s *StoreTestSuite) TestGetUnavailable() {
	s.mock.ExpectHGetAll("test:k").SetErr(errors.New("connection refused"))

	_, err := s.store.Get(context.Background(), "k")
	assert.ErrorIs(s.T(), err, internalerr.ErrStoreUnavailable)
}

func (s *StoreTestSuite) TestGetCorruptField() {
	s.mock.ExpectHGetAll("test:k").SetVal(map[string]string{
		"A cat.":       "[]",
		"He is actor.": "not json",
	})

	b, err := s.store.Get(context.Background(), "k")
	assert.ErrorIs(s.T(), err, store.ErrCorrupt)
	require.Len(s.T(), b, 1)
	assert.Equal(s.T(), "A cat.", b[0].Text)
}

func (s *StoreTestSuite) TestPut() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("test:k").SetVal(1)
	s.mock.ExpectHSet("test:k", "A cat.", "[]").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	err := s.store.Put(context.Background(), "k", store.Bucket{{Text: "A cat."}})
	assert.NoError(s.T(), err)
}

func (s *StoreTestSuite) TestPutEmptyBucket() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("test:k").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	assert.NoError(s.T(), s.store.Put(context.Background(), "k", nil))
}

func (s *StoreTestSuite) TestPutWithTTL() {
	s.store = New(s.store.rdb, WithPrefix("test:"), WithTTL(time.Hour))
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("test:k").SetVal(0)
	s.mock.ExpectHSet("test:k", "A cat.", "[]").SetVal(1)
	s.mock.ExpectExpire("test:k", time.Hour).SetVal(true)
	s.mock.ExpectTxPipelineExec()

	err := s.store.Put(context.Background(), "k", store.Bucket{{Text: "A cat.", Suggestions: []suggest.Offset{}}})
	assert.NoError(s.T(), err)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
