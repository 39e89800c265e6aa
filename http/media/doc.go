/*

The media package matches media types to serializers.

A response holding a structured body asks a Handlers registry for the
Handler matching its Content-Type and caches the bytes it produces.
NewHandlers binds JSON out of the box; applications register their own
Handler implementations for anything further.

*/
package media
