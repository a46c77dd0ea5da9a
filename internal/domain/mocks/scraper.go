package mocks

import (
	"context"

	"github.com/ListingScraper/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)

	// Handle nil body
	var body []byte
	if args.Get(0) != nil {
		body = args.Get(0).([]byte)
	}
	return body, args.Error(1)
}

type MockDocumentParser struct {
	mock.Mock
}

func (m *MockDocumentParser) Parse(body []byte) (domain.Document, error) {
	args := m.Called(body)

	var doc domain.Document
	if args.Get(0) != nil {
		doc = args.Get(0).(domain.Document)
	}
	return doc, args.Error(1)
}
