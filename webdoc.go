// Package webdoc loads web pages into text documents and answers
// questions about them. Pages are fetched over HTTP, narrowed with CSS
// selectors, stored as markdown, chunked and indexed for retrieval, and
// queried through a CLI or a small HTTP API.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, bleve/, gemini/).
package webdoc
