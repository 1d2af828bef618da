/*
Package source provides the character-source abstraction the lexer reads
from: a finite, lazy sequence of Unicode code points with an end-of-stream
signal. Three constructors cover the expected inputs — a plain string, an
NFC-normalized string, and any io.Reader of UTF-8 text.
*/
package source
