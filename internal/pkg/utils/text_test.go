package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Short text", Excerpt("<p>Short   text</p>"))

	long := strings.Repeat("grace ", 60)
	ex := Excerpt(long)
	assert.True(t, strings.HasSuffix(ex, "..."))
	assert.LessOrEqual(t, len([]rune(ex)), 153)
	assert.False(t, strings.Contains(ex, "grac..."))
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, "1 min read", ReadTime(""))
	assert.Equal(t, "1 min read", ReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, "2 mins read", ReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, "5 mins read", ReadTime("<div>"+strings.Repeat("word ", 1000)+"</div>"))
}

func TestTimeAgo(t *testing.T) {
	assert.Equal(t, "", TimeAgo(time.Time{}))
	assert.Equal(t, "2 hours ago", TimeAgo(time.Now().Add(-2*time.Hour)))
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "Unknown", FormatFileSize(0))
	assert.Equal(t, "512 Bytes", FormatFileSize(512))
	assert.Equal(t, "1.5 KB", FormatFileSize(1536))
	assert.Equal(t, "2 MB", FormatFileSize(2*1024*1024))
	assert.Equal(t, "1.23 GB", FormatFileSize(1320702444))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())

	d, err = ParseDate(" 2024-03-10T09:30:00Z ")
	require.NoError(t, err)
	assert.Equal(t, 9, d.Hour())

	_, err = ParseDate("last sunday")
	assert.Error(t, err)
}
