/*

Package logger provides logging functionality to a cairn app by defining the required behavior in [Logger]
and providing an implementation of it with [CairnLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [CairnLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*CairnLogger.Warn], [*CairnLogger.Error], and [*CairnLogger.Fatal] produce messages.

# CairnLogger

The [CairnLogger] provides all the logging functionality needed for a cairn app.
It is the implementation of [Logger] returned by the [New] function.

Log messages emitted by [CairnLogger] are composed of a few parts:
	- timestamp
	- log level
	- call site
	- message
	- log context

Here's an example:
	2023/11/07 15:55:21 [DEBUG] web/report_handler.go:43 'such fun!' log_context: "{"data":{"report":1}}"

The file, line number, and parent directory of where a [CairnLogger] method is called comprise the call site.
The message is the actual string passed into the [CairnLogger] method, in this example, [*CairnLogger.Debug].
Lastly, the log context is a JSON-encoded [*LogContext].
The last component allows for including additional data inessential to the message proper,
but provides a fuller picture of the application state at the time of logging.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.

# SentryLogger

When the SENTRY_DSN environment variable is set, [New] wraps the [CairnLogger] in a [SentryLogger].
In addition to writing warning, error and fatal logs,
a [SentryLogger] ships the [LogContext.Error] instigating those logs to Sentry.
*/
package logger
