package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlipkartParserExtractsPrice(t *testing.T) {
	body := `<html><body><div class="Nx9bqj CxhGGd">₹45,999</div></body></html>`

	result, err := FlipkartParser{}.Extract([]byte(body))
	assert.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, 45999.0, result.Value)
}

func TestFlipkartParserFirstMatchInDocumentOrderWins(t *testing.T) {
	// The deal price renders before the struck-through MRP
	body := `<div>₹1,29,990</div><div class="mrp">₹1,49,990</div>`

	result, err := FlipkartParser{}.Extract([]byte(body))
	assert.NoError(t, err)
	assert.Equal(t, 129990.0, result.Value)
}

func TestFlipkartParserDoesNotNeedMarkup(t *testing.T) {
	// The pattern scan works on any body text, including script blobs
	body := `{"pricing":{"display":"₹2,499"}}`

	result, err := FlipkartParser{}.Extract([]byte(body))
	assert.NoError(t, err)
	assert.Equal(t, 2499.0, result.Value)
}

func TestFlipkartParserNoPatternIsAbsence(t *testing.T) {
	body := `<html><body><h1>Oops! Something went wrong</h1></body></html>`

	result, err := FlipkartParser{}.Extract([]byte(body))
	assert.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, NoPrice, result)
}

func TestFlipkartParserSeparatorOnlyMatchIsError(t *testing.T) {
	// A currency symbol followed by separators alone matches the
	// pattern but strips down to nothing
	body := `Price: ₹,,`

	result, err := FlipkartParser{}.Extract([]byte(body))
	assert.Error(t, err)
	assert.False(t, result.Found)
}
