package openlibrary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ncmnjgf/ai-book-explore/internal/domain"
)

// defaultRating is used when the catalog has no community rating for a work
const defaultRating = 4.0

// MapDocs converts search documents to domain records
func MapDocs(docs []Doc, coversURL string) []domain.Book {
	books := make([]domain.Book, 0, len(docs))
	for _, doc := range docs {
		books = append(books, MapDoc(doc, coversURL))
	}
	return books
}

// MapDoc converts one search document to a domain record
func MapDoc(doc Doc, coversURL string) domain.Book {
	book := domain.Book{
		ID:        NormalizeWorkID(doc.Key),
		Title:     doc.Title,
		Authors:   doc.AuthorNames,
		Year:      yearString(doc.FirstPublishYear),
		Subjects:  truncateSubjects(doc.Subjects),
		PageCount: doc.PageCountMedian,
		Rating:    doc.RatingsAverage,
	}
	if book.Rating == 0 {
		book.Rating = defaultRating
	}
	if doc.CoverID > 0 {
		book.CoverURL = coverURL(coversURL, doc.CoverID, "M")
	}
	return book
}

// MapWork combines a work resource with resolved author details into one
// domain record
func MapWork(id string, work Work, authors []domain.AuthorDetail, baseURL, coversURL string) domain.Book {
	year := strings.TrimSpace(work.FirstPublishDate)
	if year == "" {
		year = "Unknown"
	}

	book := domain.Book{
		ID:            id,
		Title:         work.Title,
		Year:          year,
		Description:   work.Description.String(),
		Subjects:      truncateSubjects(work.Subjects),
		FirstSentence: work.FirstSentence.String(),
		Rating:        defaultRating,
		AuthorDetails: authors,
		PreviewURL:    fmt.Sprintf("%s/works/%s", baseURL, id),
	}

	if book.Description == "" && len(work.Excerpts) > 0 {
		book.Description = work.Excerpts[0].Excerpt
	}

	for _, a := range authors {
		book.Authors = append(book.Authors, a.Name)
	}

	if len(work.Covers) > 0 && work.Covers[0] > 0 {
		book.CoverURL = coverURL(coversURL, work.Covers[0], "L")
	}

	if len(work.Links) > 0 && work.Links[0].URL != "" {
		book.PreviewURL = work.Links[0].URL
	}

	return book
}

// MapAuthor converts an author resource to a detail record
func MapAuthor(author Author) domain.AuthorDetail {
	name := author.Name
	if name == "" {
		name = author.PersonalName
	}
	return domain.AuthorDetail{
		Name:      name,
		Bio:       author.Bio.String(),
		BirthDate: author.BirthDate,
	}
}

// placeholderAuthor stands in for an author whose lookup failed
func placeholderAuthor() domain.AuthorDetail {
	return domain.AuthorDetail{Name: "Unknown Author"}
}

// coverURL builds a cover image URL for a cover id and size (S, M, L)
func coverURL(coversURL string, coverID int, size string) string {
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", coversURL, coverID, size)
}

func yearString(year int) string {
	if year <= 0 {
		return "Unknown"
	}
	return strconv.Itoa(year)
}

// truncateSubjects caps the subject list; search documents can carry
// hundreds of tags
func truncateSubjects(subjects []string) []string {
	const maxSubjects = 8
	out := make([]string, 0, maxSubjects)
	for _, s := range subjects {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == maxSubjects {
			break
		}
	}
	return out
}
