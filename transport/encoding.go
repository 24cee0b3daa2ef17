package transport

// Encoding selects how a request body is serialized. It travels with each
// Request; the adapter holds no content type of its own.
type Encoding int

const (
	// EncodingForm is the default for every request not explicitly JSON.
	EncodingForm Encoding = iota
	EncodingJSON
)

const (
	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeJSON = "application/json"
)

func (e Encoding) ContentType() string {
	if e == EncodingJSON {
		return ContentTypeJSON
	}
	return ContentTypeForm
}

func (e Encoding) String() string {
	if e == EncodingJSON {
		return "json"
	}
	return "form"
}
