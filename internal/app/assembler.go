package app

import "github.com/ListingScraper/internal/domain"

// Assemble builds the successful result of a scrape.
func Assemble(currentURL string, pagination domain.PaginationInfo, entries []domain.Entry) domain.PageResult {
	if entries == nil {
		entries = []domain.Entry{}
	}
	return domain.PageResult{
		Success:    true,
		CurrentURL: currentURL,
		Pagination: pagination,
		Entries:    entries,
	}
}

// AssembleFailure builds a failed result carrying only the error message.
func AssembleFailure(err error) domain.PageResult {
	return domain.PageResult{Success: false, Error: err.Error()}
}
