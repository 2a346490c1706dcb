package entree

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for provider events.
var (
	SignalProviderCreated = capitan.NewSignal("entree.provider.created", "Provider instantiated")
	SignalReadStart       = capitan.NewSignal("entree.read.start", "Body read beginning")
	SignalReadComplete    = capitan.NewSignal("entree.read.complete", "Body read finished")
	SignalWriteStart      = capitan.NewSignal("entree.write.start", "Body write beginning")
	SignalWriteComplete   = capitan.NewSignal("entree.write.complete", "Body write finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyMediaType   = capitan.NewStringKey("media_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyCharset     = capitan.NewStringKey("charset")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyOutcome     = capitan.NewStringKey("outcome")
	KeyIgnored     = capitan.NewIntKey("ignored_types")
	KeyError       = capitan.NewErrorKey("error")
)

// emitProviderCreated emits an event when a provider is created.
func emitProviderCreated(ctx context.Context, contentType string, ignored int) {
	capitan.Emit(ctx, SignalProviderCreated,
		KeyContentType.Field(contentType),
		KeyIgnored.Field(ignored),
	)
}

// emitReadStart emits an event when a body read begins.
func emitReadStart(ctx context.Context, mediaType, typeName, charset string) {
	capitan.Emit(ctx, SignalReadStart,
		KeyMediaType.Field(mediaType),
		KeyTypeName.Field(typeName),
		KeyCharset.Field(charset),
	)
}

// emitReadComplete emits an event when a body read finishes.
func emitReadComplete(ctx context.Context, mediaType, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyMediaType.Field(mediaType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReadComplete, fields...)
	}
}

// emitWriteStart emits an event when a body write begins.
func emitWriteStart(ctx context.Context, mediaType, typeName, charset string) {
	capitan.Emit(ctx, SignalWriteStart,
		KeyMediaType.Field(mediaType),
		KeyTypeName.Field(typeName),
		KeyCharset.Field(charset),
	)
}

// emitWriteComplete emits an event when a body write finishes. A write cut
// short by the peer closing its end reports the peer_closed outcome without
// an error field.
func emitWriteComplete(ctx context.Context, mediaType, typeName string, outcome writeOutcome, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyMediaType.Field(mediaType),
		KeyTypeName.Field(typeName),
		KeyOutcome.Field(outcome.String()),
		KeyDuration.Field(duration),
	}
	if outcome == writeFailed && err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalWriteComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalWriteComplete, fields...)
	}
}
