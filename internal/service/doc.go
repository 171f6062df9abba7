// Package service implements the application's business logic, composing
// the vocabulary client, the sentence grader, and the session store into
// the user-facing practice and dashboard operations.
package service
