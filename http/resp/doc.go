/*

The resp package composes HTTP responses: status, headers, cookies, links,
and a body resolved from bytes, text, or a structured value serialized
through the configured media handlers.

A Response accumulates state through its setters and typed header access,
then exports deterministically: TransportHeaders freezes the ordered
header pairs, BodyBytes resolves the payload, and Apply writes both to an
http.ResponseWriter. Application-wide behavior (cookie security policy,
default media type, serializers) lives on a shared Options.

*/
package resp
