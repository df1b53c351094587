// Package domain defines the core business entities of the quiz generator:
// the QuizRecord with its options and localized text, the closed category
// set, and the validation rules every record must satisfy before it is
// persisted or forwarded. The same validation routine is used at every
// boundary crossing so that generation and bulk transfer can never disagree
// about what a valid record looks like.
package domain
