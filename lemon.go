package lemon

// --- A general purpose vocabulary for token categories ---------------------

// TokType is a category type for a token. Grammar generators assign the
// concrete codes; we only reserve 0 for the synthetic end-of-input token.
type TokType int

// EOF is the token category reserved for the synthetic end-of-input token.
const EOF TokType = 0

// TokTypeStringer is a type to be provided by a scanner/parser combination to
// be able to print out token categories.
type TokTypeStringer func(TokType) string
