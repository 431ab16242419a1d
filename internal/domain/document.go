package domain

// Document is a text file stored in a repository.
// SHA is the blob SHA the content was read at, required to update it.
type Document struct {
	Content string
	SHA     string
}
