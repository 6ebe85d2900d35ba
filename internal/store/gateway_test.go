package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockGateway(t *testing.T) (Gateway, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &gateway{db: db}, mock
}

func TestGateway_Count(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT get_username($1)`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"get_username"}).AddRow(1))

	n, err := g.Count(context.Background(), OpGetUsername, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_CountWrapsTransportError(t *testing.T) {
	g, mock := newMockGateway(t)

	cause := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT get_username($1)`)).
		WithArgs("alice").
		WillReturnError(cause)

	_, err := g.Count(context.Background(), OpGetUsername, "alice")
	var storeErr *Error
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, OpGetUsername, storeErr.Op)
	assert.ErrorIs(t, err, cause)
}

func TestGateway_UnknownOpExecutesNoSQL(t *testing.T) {
	g, mock := newMockGateway(t)

	_, err := g.Count(context.Background(), Op("drop_tables"), 1)
	assert.ErrorIs(t, err, ErrUnknownOp)

	err = g.Exec(context.Background(), Op("drop_tables"), 1)
	assert.ErrorIs(t, err, ErrUnknownOp)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_Exec(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectExec(regexp.QuoteMeta(`CALL reset_user_password($1, $2)`)).
		WithArgs("alice", "digest").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := g.Exec(context.Background(), OpResetUserPassword, "alice", "digest")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

type credsRow struct {
	username string
	digest   string
}

func scanCredsRow(r RowScanner) (credsRow, error) {
	var c credsRow
	err := r.Scan(&c.username, &c.digest)
	return c, err
}

func TestOne_Present(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM get_user_credentials($1)`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password"}).AddRow("alice", "d1"))

	c, found, err := One(context.Background(), g, OpGetUserCredentials, scanCredsRow, "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, credsRow{username: "alice", digest: "d1"}, c)
}

func TestOne_Absent(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM get_user_credentials($1)`)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password"}))

	_, found, err := One(context.Background(), g, OpGetUserCredentials, scanCredsRow, "ghost")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMany_EmptyIsNotNil(t *testing.T) {
	g, mock := newMockGateway(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM get_announcements()`)).
		WillReturnRows(sqlmock.NewRows([]string{"username", "password"}))

	rows, err := Many(context.Background(), g, OpGetAnnouncements, scanCredsRow)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Len(t, rows, 0)
}

func TestFactory_PerCallCloseIsNoOp(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	g, err := NewFactory(db, PerCall).Open(context.Background())
	require.NoError(t, err)
	assert.NoError(t, g.Close())
}

func TestFactory_PinnedHoldsOneConnection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`CALL update_prayer_times_file($1)`)).
		WithArgs([]byte{1, 2}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	f := NewFactory(db, Pinned)
	g, err := f.Open(context.Background())
	require.NoError(t, err)

	require.NoError(t, g.Exec(context.Background(), OpUpdatePrayerTimesFile, []byte{1, 2}))
	require.NoError(t, g.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestError_Unwrap(t *testing.T) {
	cause := sql.ErrConnDone
	err := wrap(OpGetAnnouncements, cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "get_announcements")
}
