/*

The cookie package collects the cookies a response sets and renders each as
its own RFC 6265 Set-Cookie header line.

A Jar validates names and values up front, applies a configurable
secure-by-default policy, and preserves the order cookies were set in.
A Codec backed by gorilla/securecookie signs values a deployment cannot
afford to have forged.

*/
package cookie
