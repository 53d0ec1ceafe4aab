package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// WatermillBridge implements Publisher and Subscriber using watermill's GoChannel.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	tracer trace.Tracer
	logger watermill.LoggerAdapter
}

var _ Bus = (*WatermillBridge)(nil)

const (
	// Metadata keys used to carry Message fields through watermill's message.
	metaKeySource = "source"
	metaKeyTopic  = "topic"
)

// spanContext travels in message metadata as W3C trace context headers, since
// gochannel hands subscribers a copy of the message without its context.
var spanContext propagation.TextMapPropagator = propagation.TraceContext{}

func isInternalKey(k string) bool {
	if k == metaKeySource || k == metaKeyTopic {
		return true
	}
	for _, f := range spanContext.Fields() {
		if k == f {
			return true
		}
	}
	return false
}

// NewWatermillBridge initializes an in-memory bus. A nil tracer disables spans.
func NewWatermillBridge(tracer trace.Tracer) *WatermillBridge {
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		logger,
	)

	var pub message.Publisher = goChannel
	if tracer != nil {
		pub = NewPublisherTracingMiddleware(goChannel, tracer)
	}

	return &WatermillBridge{
		pub:    pub,
		sub:    goChannel,
		tracer: tracer,
		logger: logger,
	}
}

func mapToWatermillMessage(ctx context.Context, msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wmMsg.SetContext(ctx)

	wmMsg.Metadata.Set(metaKeySource, msg.Source)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}

	return wmMsg
}

func mapToPubSubMessage(wmMsg *message.Message) Message {
	metadata := make(map[string]string)
	for k, v := range wmMsg.Metadata {
		if !isInternalKey(k) {
			metadata[k] = v
		}
	}

	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		Source:   wmMsg.Metadata.Get(metaKeySource),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

// Publish implements the Publisher interface.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	if msg.Topic == "" {
		return fmt.Errorf("publish: empty topic")
	}
	return wb.pub.Publish(msg.Topic, mapToWatermillMessage(ctx, msg))
}

// Subscribe implements the Subscriber interface. It returns once the
// subscription is active.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	process := func(wmMsg *message.Message) ([]*message.Message, error) {
		return nil, handler(wmMsg.Context(), mapToPubSubMessage(wmMsg))
	}
	if wb.tracer != nil {
		process = TracingMiddleware(wb.tracer)(process)
	}

	go func() {
		for wmMsg := range messages {
			// gochannel redelivers nacked messages, so failures are logged and dropped.
			if _, err := process(wmMsg); err != nil {
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
			}
			wmMsg.Ack()
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts down the bridge and ends every subscription loop.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}

// TracingMiddleware wraps message processing in a span named after the topic.
// The span continues the trace started by the publisher.
func TracingMiddleware(tracer trace.Tracer) func(message.HandlerFunc) message.HandlerFunc {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			topic := msg.Metadata.Get(metaKeyTopic)
			parent := spanContext.Extract(msg.Context(), propagation.MapCarrier(msg.Metadata))
			spanCtx, span := tracer.Start(parent, "pubsub.process."+topic,
				trace.WithSpanKind(trace.SpanKindConsumer),
				trace.WithAttributes(
					attribute.String("messaging.system", "watermill"),
					attribute.String("messaging.operation", "process"),
					attribute.String("messaging.destination", topic),
					attribute.String("messaging.message_id", msg.UUID),
					attribute.String("messaging.source", msg.Metadata.Get(metaKeySource)),
					attribute.Int("messaging.message_payload_size_bytes", len(msg.Payload)),
				),
			)
			defer span.End()
			msg.SetContext(spanCtx)

			produced, err := h(msg)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
			return produced, nil
		}
	}
}

// PublisherTracingMiddleware wraps a publisher with a span per published message.
type PublisherTracingMiddleware struct {
	publisher message.Publisher
	tracer    trace.Tracer
}

func NewPublisherTracingMiddleware(publisher message.Publisher, tracer trace.Tracer) *PublisherTracingMiddleware {
	return &PublisherTracingMiddleware{publisher: publisher, tracer: tracer}
}

func (p *PublisherTracingMiddleware) Publish(topic string, messages ...*message.Message) error {
	spans := make([]trace.Span, 0, len(messages))
	for _, msg := range messages {
		spanCtx, span := p.tracer.Start(msg.Context(), "pubsub.publish."+topic,
			trace.WithSpanKind(trace.SpanKindProducer),
			trace.WithAttributes(
				attribute.String("messaging.system", "watermill"),
				attribute.String("messaging.operation", "publish"),
				attribute.String("messaging.destination", topic),
				attribute.String("messaging.message_id", msg.UUID),
				attribute.Int("messaging.message_payload_size_bytes", len(msg.Payload)),
			),
		)
		msg.SetContext(spanCtx)
		spanContext.Inject(spanCtx, propagation.MapCarrier(msg.Metadata))
		spans = append(spans, span)
	}

	err := p.publisher.Publish(topic, messages...)
	for _, span := range spans {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
	return err
}

func (p *PublisherTracingMiddleware) Close() error {
	return p.publisher.Close()
}
