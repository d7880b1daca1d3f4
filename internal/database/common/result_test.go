package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateIdentifier(t *testing.T) {
	assert.NoError(t, ValidateIdentifier("order_items"))
	assert.NoError(t, ValidateIdentifier("_t1"))
	assert.Error(t, ValidateIdentifier("1orders"))
	assert.Error(t, ValidateIdentifier("orders; DROP TABLE customers"))
	assert.Error(t, ValidateIdentifier(""))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "abc", FormatValue([]byte("abc")))
	assert.Equal(t, int64(7), FormatValue(int64(7)))
	assert.Nil(t, FormatValue(nil))
	assert.Equal(t, "2025-06-15", FormatValue(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-15 08:30:00", FormatValue(time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)))
}
