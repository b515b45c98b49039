// Package dataset provides the in-memory observation container handed to
// the analysis pipeline, plus the fixed class-code vocabulary of the zoo
// dataset the library's walkthrough examples are built around.
//
// The container couples a numeric observation matrix with feature names and
// optional per-row class labels. Parsing delimited text into the container
// is deliberately out of scope; callers load their data however they like
// and hand over plain rows.
package dataset
