/*

The uri package provides the percent-encoding primitives other cairn packages
use when composing header values that carry URIs, such as Location and Link.

It intentionally differs from net/url: encoding operates on raw strings
destined for header values, not parsed URL structures,
and the set of characters preserved matches RFC 3986 exactly.

*/
package uri
