package smoke

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "健康", Truncate("健康档案", 2))
}

func TestRender(t *testing.T) {
	body := []byte(`{"steps":7200,"note":"<b>良好</b> & stable","tags":[]}`)

	got := Render(body)
	assert.Equal(t, "{\n  \"steps\": 7200,\n  \"note\": \"<b>良好</b> & stable\",\n  \"tags\": []\n}", got)
}

func TestRender_KeepsFieldOrder(t *testing.T) {
	body := []byte(`{"success":true,"data":{"userId":"u1","ageGroup":"adult","activityLevel":"moderately_active"}}`)

	got := Preview(body, 60)
	assert.Equal(t, "{\n  \"success\": true,\n  \"data\": {\n    \"userId\": \"u1\",\n    \"ag...", got)
	assert.Less(t, strings.Index(Render(body), "userId"), strings.Index(Render(body), "activityLevel"))
}

func TestPreview(t *testing.T) {
	body := []byte(`{"data":"` + strings.Repeat("x", 500) + `"}`)

	got := Preview(body, 200)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, 203, len([]rune(got)))

	short := Preview([]byte(`{}`), 200)
	assert.Equal(t, "{}...", short)
}

func TestFormatField(t *testing.T) {
	assert.Equal(t, "null", FormatField(nil, false))
	assert.Equal(t, "null", FormatField(nil, true))
	assert.Equal(t, "boom", FormatField("boom", true))
	assert.Equal(t, `{"code":"X"}`, FormatField(map[string]any{"code": "X"}, true))
	assert.Equal(t, "42", FormatField(json.Number("42"), true))
}

func TestReporter_Banner(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Banner("title")

	line := strings.Repeat("=", 60)
	assert.Equal(t, line+"\ntitle\n"+line+"\n", buf.String())
}
