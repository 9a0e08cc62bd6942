package review

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentiq/internal/model"
	"talentiq/internal/util/id"
)

func TestLoadJSON(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "resume.json"))
	require.NoError(t, err)

	assert.Equal(t, "6ba7b810-9dad-41d1-80b4-00c04fd430c8", r.ID)
	assert.Equal(t, "Acme", r.CompanyName)
	assert.Equal(t, "resume.pdf", r.FileName)
	assert.Equal(t, int64(1572864), r.FileSize)
	assert.Equal(t, 82, r.Feedback.OverallScore)
	assert.Equal(t, 65, r.Feedback.ATS.Score)
	require.Len(t, r.Feedback.ATS.Tips, 2)
	assert.Equal(t, model.TipImprove, r.Feedback.ATS.Tips[1].Type)
	assert.Empty(t, r.Feedback.Structure.Tips)
	assert.Equal(t, "Go and Postgres match the role.", r.Feedback.Skills.Tips[0].Explanation)
}

func TestLoadTOML(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "resume.toml"))
	require.NoError(t, err)

	assert.True(t, id.Valid(r.ID), "missing id should be generated, got %q", r.ID)
	assert.Equal(t, "resume.docx", r.FileName)
	assert.Equal(t, int64(20480), r.FileSize)
	assert.Equal(t, 48, r.Feedback.OverallScore)
	assert.Equal(t, 70, r.Feedback.ATS.Score)
	require.Len(t, r.Feedback.ATS.Tips, 1)
	assert.Equal(t, "Plain text layout", r.Feedback.ATS.Tips[0].Tip)
	assert.Equal(t, 0, r.Feedback.Skills.Score)
}

func TestLoadYAML(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "resume.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "resume.yaml", r.FileName, "file name defaults to the document's base name")
	assert.Equal(t, "Initech", r.CompanyName)
	assert.Equal(t, 71, r.Feedback.OverallScore)
	require.Len(t, r.Feedback.ToneAndStyle.Tips, 1)
	assert.Equal(t, model.TipImprove, r.Feedback.ToneAndStyle.Tips[0].Type)
}

func TestLoadRejectsOutOfRangeScore(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad_score.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OverallScore")
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{name: "unknown extension", data: `{}`, ext: ".xml"},
		{name: "broken json", data: `{"feedback":`, ext: ".json"},
		{name: "unknown json field", data: `{"rating": 3}`, ext: ".json"},
		{name: "broken toml", data: `fileSize = `, ext: ".toml"},
		{name: "broken yaml", data: "feedback: [", ext: ".yaml"},
		{name: "bad tip type", data: `{"feedback":{"content":{"score":5,"tips":[{"type":"meh","tip":"x"}]}}}`, ext: ".json"},
		{name: "empty tip text", data: `{"feedback":{"ATS":{"score":5,"tips":[{"type":"good","tip":""}]}}}`, ext: ".json"},
		{name: "negative file size", data: `{"fileSize": -1}`, ext: ".json"},
		{name: "malformed id", data: `{"id": "resume-1"}`, ext: ".json"},
		{name: "truncated id", data: `{"id": "6ba7b810-9dad-41d1-80b4"}`, ext: ".json"},
		{name: "unknown yaml field", data: "feedback:\n  overalScore: 80\n", ext: ".yaml"},
		{name: "unknown toml field", data: "[feedback]\noveralScore = 80\n", ext: ".toml"},
		{name: "unknown top-level toml key", data: "rating = 3\n", ext: ".toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.ext)
			assert.Error(t, err)
		})
	}
}

func TestDecodeMinimal(t *testing.T) {
	r, err := Decode([]byte(`{}`), ".json")
	require.NoError(t, err)
	assert.True(t, id.Valid(r.ID))
	assert.Equal(t, 0, r.Feedback.OverallScore)
}

func TestDecodeAcceptsIDForms(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "lower case", id: "6ba7b810-9dad-41d1-80b4-00c04fd430c8"},
		{name: "upper case", id: "6BA7B810-9DAD-41D1-80B4-00C04FD430C8"},
		{name: "urn form", id: "urn:uuid:6ba7b810-9dad-41d1-80b4-00c04fd430c8"},
		{name: "braced", id: "{6ba7b810-9dad-41d1-80b4-00c04fd430c8}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Decode([]byte(`{"id": "`+tt.id+`"}`), ".json")
			require.NoError(t, err)
			assert.Equal(t, tt.id, r.ID, "caller-supplied ids are kept as given")
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	r, err := Decode(nil, ".yaml")
	require.NoError(t, err)
	assert.True(t, id.Valid(r.ID))
}
