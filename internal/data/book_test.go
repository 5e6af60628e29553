package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Anamuratori/SC22-testesautom-livraria/internal/validator"
)

// validBookInput returns an input that passes every validation rule,
// publishing one month from now.
func validBookInput() *BookInput {
	price := 100.0
	pages := 900
	date := Today().AddDays(30)

	return &BookInput{
		Title:           "Um Defeito de Cor",
		Summary:         "Testando resumo menos de 500 caracteres.",
		TableOfContents: "1- Testando sumario1 | 2- Testando sumario2 | 3- Testando sumario 3",
		Price:           &price,
		PageCount:       &pages,
		ISBN:            "9788501011756",
		PublicationDate: &date,
	}
}

func TestValidateBookInputAcceptsValidPayload(t *testing.T) {
	v := validator.New()

	ValidateBookInput(v, validBookInput())

	assert.True(t, v.Valid(), "unexpected violations: %v", v.Errors)
}

func TestValidateBookInputRejections(t *testing.T) {
	lowPrice := 10.0
	fewPages := 10

	tests := []struct {
		name   string
		mutate func(input *BookInput)
		field  string
	}{
		{
			name:   "missing title",
			mutate: func(input *BookInput) { input.Title = "" },
			field:  "title",
		},
		{
			name:   "missing summary",
			mutate: func(input *BookInput) { input.Summary = "" },
			field:  "summary",
		},
		{
			name:   "summary longer than permitted",
			mutate: func(input *BookInput) { input.Summary = strings.Repeat("a", MaxSummaryLength+1) },
			field:  "summary",
		},
		{
			name:   "missing price",
			mutate: func(input *BookInput) { input.Price = nil },
			field:  "price",
		},
		{
			name:   "price below minimum",
			mutate: func(input *BookInput) { input.Price = &lowPrice },
			field:  "price",
		},
		{
			name:   "missing page count",
			mutate: func(input *BookInput) { input.PageCount = nil },
			field:  "page_count",
		},
		{
			name:   "page count below minimum",
			mutate: func(input *BookInput) { input.PageCount = &fewPages },
			field:  "page_count",
		},
		{
			name:   "missing isbn",
			mutate: func(input *BookInput) { input.ISBN = "" },
			field:  "isbn",
		},
		{
			name:   "missing publication date",
			mutate: func(input *BookInput) { input.PublicationDate = nil },
			field:  "publication_date",
		},
		{
			name: "publication date in the past",
			mutate: func(input *BookInput) {
				past := Today().AddDays(-1)
				input.PublicationDate = &past
			},
			field: "publication_date",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validBookInput()
			tc.mutate(input)

			v := validator.New()
			ValidateBookInput(v, input)

			assert.False(t, v.Valid())
			assert.Contains(t, v.Errors, tc.field)
		})
	}
}

func TestValidateBookInputBoundaryValues(t *testing.T) {
	// A summary of exactly 500 characters, the minimum price and page count,
	// and a publication date of today are all still acceptable.
	input := validBookInput()

	price := MinimumPrice
	pages := MinimumPageCount
	today := Today()

	input.Summary = strings.Repeat("a", MaxSummaryLength)
	input.Price = &price
	input.PageCount = &pages
	input.PublicationDate = &today

	v := validator.New()
	ValidateBookInput(v, input)

	assert.True(t, v.Valid(), "unexpected violations: %v", v.Errors)
}

func TestValidateBookInputSummaryLimitCountsCharacters(t *testing.T) {
	// 500 accented characters occupy 1000 bytes in UTF-8; the limit applies
	// to characters, so this summary is still acceptable.
	input := validBookInput()
	input.Summary = strings.Repeat("ç", MaxSummaryLength)

	v := validator.New()
	ValidateBookInput(v, input)
	assert.True(t, v.Valid(), "unexpected violations: %v", v.Errors)

	input.Summary = strings.Repeat("ç", MaxSummaryLength+1)

	v = validator.New()
	ValidateBookInput(v, input)
	assert.Contains(t, v.Errors, "summary")
}

func TestValidateBookInputTableOfContentsIsUnconstrained(t *testing.T) {
	input := validBookInput()
	input.TableOfContents = ""

	v := validator.New()
	ValidateBookInput(v, input)

	assert.True(t, v.Valid())
}
