package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lob/internal/book"
)

func TestReadFile_DefaultTemplate(t *testing.T) {
	b := book.New(book.Config{AssetName: "AAPL"})
	input := strings.NewReader(
		"bid,ignored-id,100,10\n" +
			"ask,ignored-id,105,5\n",
	)

	ids, err := ReadFile(input, DefaultLineFormat, b)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	bid, ok := b.BestBid()
	require.True(t, ok)
	assert.Equal(t, int64(100), bid.Price)

	ask, ok := b.BestAsk()
	require.True(t, ok)
	assert.Equal(t, int64(105), ask.Price)
}

func TestReadFile_SkipColumnsAndSideAliases(t *testing.T) {
	b := book.New(book.Config{AssetName: "AAPL"})
	// {*} and a bare skip column both mark ignored positions.
	input := strings.NewReader(
		"BUY,{*},extra, 50 , 20 \n" +
			"sell,{*},extra,60,15\n",
	)

	ids, err := ReadFile(input, "{Type},{*},{},{Price},{Quantity}", b)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	bid, ok := b.BestBid()
	require.True(t, ok)
	assert.Equal(t, int64(50), bid.Price)
	assert.Equal(t, int64(20), bid.Quantity)
}

func TestReadFile_MalformedLinesAreSkippedNotFatal(t *testing.T) {
	b := book.New(book.Config{AssetName: "AAPL"})
	input := strings.NewReader(
		"bid,1,not-a-number,10\n" +
			"bid,2,100,10\n" +
			"\n" +
			"bid,3,101\n",
	)

	ids, err := ReadFile(input, DefaultLineFormat, b)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestParseLineFormat_MissingTokenIsError(t *testing.T) {
	_, err := parseLineFormat("{Type},{ID},{Quantity}")
	assert.Error(t, err)
}
