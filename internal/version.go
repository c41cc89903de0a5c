package internal

// Version is the current polyglot release version.
const Version = "0.3.1"
