// Package grader implements the validation.SentenceValidator interface
// against the AI grading webhook. When the webhook cannot produce a usable
// answer the client substitutes a fixed, clearly-marked fallback result so
// the submission flow never hard-fails on that dependency.
package grader
