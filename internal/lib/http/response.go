package httpresponse

// H is a shorthand for ad hoc JSON response bodies.
type H map[string]interface{}
