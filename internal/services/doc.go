// package services contains clients for the remote HTTP collaborators:
// the DummyJSON demo auth API and TheSportsDB sports-data API.
//
// Both are plain REST over JSON. The sports API is read-only and served from
// a free tier, so its client carries a request rate limiter. Neither client
// retries; failures surface once with the best available message.
package services
