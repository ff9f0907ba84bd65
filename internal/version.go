package internal

// Version is the current vocabmt version
const Version = "0.1.0"
