// Package huggingface streams corpus rows from the Hugging Face
// datasets server.
//
// The datasets server exposes hosted datasets over a REST API without
// requiring a local copy of the data. This package reads the QASports
// question-answering corpus one page at a time:
//
//   - GET /is-valid checks the dataset is servable
//   - GET /rows?dataset=&config=&split=&offset=&length= pages through
//     a split in server order, at most 100 rows per page
//
// Each row carries the passage (context), a content-identity key
// (context_id), the passage title and its source URL. Question and
// answer columns are present in the dataset but never read; the corpus
// is built from passages alone.
//
// # Rate limiting
//
// The server is a shared free service. Requests pass through a
// proactive token bucket, and 429 responses record a reactive backoff
// honouring the Retry-After header. A page fetch is retried a bounded
// number of times after rate limit responses before the split fetch
// fails.
//
// # Authentication
//
// Public datasets need no credentials. A Hugging Face token, when
// configured, is attached as a bearer token and unlocks gated datasets
// and higher rate limits.
package huggingface
