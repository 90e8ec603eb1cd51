// Package httpclient builds the *http.Client shared by the collection service
// and media catalog clients.
package httpclient
