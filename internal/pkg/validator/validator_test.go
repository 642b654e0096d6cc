package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"name" validate:"required,max=10,category_name"`
	Duration string `json:"duration" validate:"omitempty,duration"`
	Count    int    `json:"count" validate:"gte=0"`
}

func TestStruct_ReportsEveryFailingField(t *testing.T) {
	err := Struct(&sample{Name: "", Duration: "99:99", Count: -1})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
	assert.Equal(t, "is required", verr.Fields["name"])
	assert.Equal(t, "must be in format MM:SS or H:MM:SS", verr.Fields["duration"])
	assert.Contains(t, verr.Fields, "count")
}

func TestStruct_CategoryName(t *testing.T) {
	assert.NoError(t, Struct(&sample{Name: "Youth-Two"}))

	err := Struct(&sample{Name: "Youth 2"})
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "can only contain letters, spaces, and hyphens", verr.Fields["name"])
}

func TestStruct_Duration(t *testing.T) {
	for _, d := range []string{"4:05", "45:00", "1:02:03", "12:59:59"} {
		assert.NoError(t, Struct(&sample{Name: "Ok", Duration: d}), d)
	}
	for _, d := range []string{"4", "4:5", "1:60:00", "abc"} {
		assert.Error(t, Struct(&sample{Name: "Ok", Duration: d}), d)
	}
}

func TestError_MessageIsStable(t *testing.T) {
	err := &Error{Fields: map[string]string{"b": "is required", "a": "is required"}}
	assert.Equal(t, "validation failed: a: is required; b: is required", err.Error())
}
