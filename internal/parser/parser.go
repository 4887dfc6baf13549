package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yungbote/orderdesk-backend/internal/types"
)

// Column order of a submitted line. The first column is a sequence number
// kept only for positional padding and is discarded.
const (
	colSequence = iota
	colCompanyName
	colCustomerAddress
	colOrderItem
	colPrice
	colCurrency
	columnCount
)

// ParseError reports malformed submitted text. Line is the 1-based physical
// line within the trimmed block, counting blank lines; 0 when the failure is
// not tied to a single line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// Parse converts a block of delimited text into orders, one per line.
// Quoted fields containing commas are supported; whitespace is trimmed
// around the block and around each field; blank trailing lines are ignored.
// On malformed input no partial results are returned.
func Parse(text string) ([]types.Order, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []types.Order{}, nil
	}

	r := csv.NewReader(strings.NewReader(trimmed))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	orders := []types.Order{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Line: csvErr.Line, Msg: csvErr.Err.Error()}
			}
			return nil, &ParseError{Msg: err.Error()}
		}
		if len(record) < columnCount {
			// FieldPos counts physical lines the same way csv errors do,
			// so blank lines between records do not skew the report.
			line, _ := r.FieldPos(0)
			return nil, &ParseError{
				Line: line,
				Msg:  fmt.Sprintf("expected %d columns, got %d", columnCount, len(record)),
			}
		}
		orders = append(orders, types.Order{
			CompanyName:     strings.TrimSpace(record[colCompanyName]),
			CustomerAddress: strings.TrimSpace(record[colCustomerAddress]),
			OrderItem:       strings.TrimSpace(record[colOrderItem]),
			Price:           parsePrice(record[colPrice]),
			Currency:        strings.TrimSpace(record[colCurrency]),
		})
	}
	return orders, nil
}

// parsePrice casts numeric-looking text to a number; anything else is
// treated as an absent price.
func parsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
