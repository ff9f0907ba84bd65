// Package auth validates API keys. The Client asks the user service whether
// a key is valid; the Store is the user service's own SQLite user table with
// bcrypt password hashes and generated API keys.
package auth
