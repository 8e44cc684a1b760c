package service

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

type greetingService struct{}

func NewGreetingService() GreetingService {
	return &greetingService{}
}

func (g *greetingService) Hello(ctx context.Context) string {
	return "hi"
}

func (g *greetingService) Basic(ctx context.Context, name string, age int32) string {
	return fmt.Sprintf("name: %s, age: %d", name, age)
}

// Add sums in int64 so that no pair of int32 operands overflows.
func (g *greetingService) Add(ctx context.Context, a, b int32) string {
	return fmt.Sprintf("res: %d", int64(a)+int64(b))
}

// Items renders the query as a quoted map literal, e.g.
// `get shoes: {"color": "red", "size": "9"}`. Keys are sorted and a repeated key
// keeps its last value.
func (g *greetingService) Items(ctx context.Context, name string, query url.Values) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(k))
		b.WriteString(": ")
		b.WriteString(strconv.Quote(lastValue(query[k])))
	}
	b.WriteByte('}')

	return fmt.Sprintf("get %s: %s", name, b.String())
}

func lastValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}
