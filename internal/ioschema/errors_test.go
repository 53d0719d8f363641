package ioschema

import (
	"errors"
	"testing"

	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotConnectedError_Structure(t *testing.T) {
	err := NotConnectedError()
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
}

func TestGORMConnectionError_Structure(t *testing.T) {
	originalErr := errors.New("connection failed")

	gnErr, ok := GORMConnectionError(originalErr).(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaGORMConnectionError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestCreateSchemaError_Structure(t *testing.T) {
	originalErr := errors.New("permission denied")

	gnErr, ok := CreateSchemaError(originalErr).(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaCreateError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestIndexError_Structure(t *testing.T) {
	originalErr := errors.New("could not create unique index")
	stmt := "CREATE UNIQUE INDEX x ON tool (lower(tool_name));"

	gnErr, ok := IndexError(stmt, originalErr).(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.SchemaIndexError, gnErr.Code)
	assert.Equal(t, []any{stmt}, gnErr.Vars)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}
