/*

The headers package provides the response-side header container cairn builds
responses on.

A Store keeps each header as an ordered list of raw values under a
case-insensitive name and renders the list through a pluggable Normalizer
when the response exports. Typed accessors cover the well-known response
headers (Content-Type, ETag, Last-Modified and friends) so callers set
structured values and the package handles the wire formatting.

*/
package headers
