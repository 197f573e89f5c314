// Package services contains the business logic between the HTTP handlers
// and the data layer. ChartService turns selector inputs into chart
// payloads from the in-memory dataset; TextMiningService fetches and
// analyses articles for the word-cloud page. Services return sentinel
// errors; the transport layer maps them to HTTP problem responses.
package services
