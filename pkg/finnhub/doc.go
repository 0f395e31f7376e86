// Package finnhub is a typed client for the Finnhub stock API. Each method
// wraps one REST endpoint and decodes the JSON response into its schema type;
// rate limiting by the provider is reported as a first-class outcome rather
// than an error.
//
// Finnhub API documentation: https://finnhub.io/docs/api
package finnhub
