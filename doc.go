// Package content parses the Content-type and Content-disposition header values
// used by HTTP requests and responses, and by multipart bodies in particular,
// into validated structures.
//
// The two entry points are ParseType and ParseDisposition:
//
//	ct, err := content.ParseType("multipart/form-data; boundary=AbC123")
//	cd, err := content.ParseDisposition(`form-data; name="file"; filename="a.jpg"`)
//
// Both are pure functions of their input. They do not read headers from
// anywhere, do not cache anything, and take time proportional to the length
// of the header value no matter how it is crafted. Headers with huge runs of
// whitespace or thousands of repeated parameters are handled in a single
// forward pass. Callers are still expected to bound the size of headers they
// accept.
//
// Every failure is returned as a *ParseError. Use errors.Is with one of the
// Err* kinds, such as ErrMissingBoundary or ErrMissingNameParameter, to branch
// on the kind of failure. The message returned by Error() is fixed for each
// kind, so existing code that matches on messages keeps working.
//
// A Parser built with New allows the defaults to be changed. The available
// options select the reporting style of Content-type errors
// (WithTypeErrors), the accepted disposition types (WithDispositionTypes), and
// the charset decoding of RFC 8187 extended parameters (WithParamOptions,
// together with the param/encoding package).
//
// The lower level parameter parser lives in the param package.
package content
