package checks

import (
	"context"
	"testing"

	"altered-knowledge/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCollection(t *testing.T) {
	t.Run("Clean", func(t *testing.T) {
		client := mocks.Bucket(map[string]string{
			"COLLECTION/me.json": `[{"card_id":"A","count":2},{"card_id":"B","count":0}]`,
		})

		report, err := CheckCollection(context.Background(), client, "kb", "COLLECTION/", 2)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Files)
		assert.Equal(t, 2, report.Rows)
		assert.Zero(t, report.Errors)
		assert.Zero(t, report.Warnings)
		assert.Empty(t, report.Problems)
	})

	t.Run("Row Problems", func(t *testing.T) {
		client := mocks.Bucket(map[string]string{
			"COLLECTION/a.json": `[
				{"card_id":"A","count":2},
				{"count":1},
				{"card_id":"C"},
				{"card_id":"D","count":"3"},
				{"card_id":"E","count":2.5},
				{"card_id":"F","count":150},
				{"card_id":"G","count":-1}
			]`,
		})

		report, err := CheckCollection(context.Background(), client, "kb", "COLLECTION/", 2)
		require.NoError(t, err)
		assert.Equal(t, 7, report.Rows)
		assert.Equal(t, 4, report.Errors)
		assert.Equal(t, 2, report.Warnings)

		byRow := map[int]FileProblem{}
		for _, p := range report.Problems {
			assert.Equal(t, "COLLECTION/a.json", p.Key)
			byRow[p.Row] = p
		}
		assert.Equal(t, "missing card_id", byRow[1].Message)
		assert.Equal(t, "missing count", byRow[2].Message)
		assert.Contains(t, byRow[3].Message, "not an integer")
		assert.Contains(t, byRow[4].Message, "not an integer")
		assert.Equal(t, SeverityWarning, byRow[5].Severity)
		assert.Equal(t, "count 150 outside [0, 99]", byRow[5].Message)
		assert.Equal(t, SeverityWarning, byRow[6].Severity)
	})

	t.Run("Unreadable File", func(t *testing.T) {
		client := mocks.Bucket(map[string]string{
			"COLLECTION/bad.json": `{not json`,
			"COLLECTION/ok.json":  `{"card_id":"A","count":1}`,
		})

		report, err := CheckCollection(context.Background(), client, "kb", "COLLECTION/", 2)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Files)
		assert.Equal(t, 1, report.Rows)
		require.Len(t, report.Problems, 1)
		assert.Equal(t, "COLLECTION/bad.json", report.Problems[0].Key)
		assert.Equal(t, -1, report.Problems[0].Row)
		assert.Equal(t, SeverityError, report.Problems[0].Severity)
	})
}
