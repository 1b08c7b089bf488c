package provider

import (
	"context"
	"fmt"
	"sync"

	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"go.uber.org/zap"
)

// WhatsmeowProvider runs embedded WhatsApp connections through whatsmeow,
// one device per instance name.
type WhatsmeowProvider struct {
	container *sqlstore.Container
	clientLog waLog.Logger
	logger    *zap.Logger
}

// NewWhatsmeowProvider opens the whatsmeow device store at dsn (postgres).
func NewWhatsmeowProvider(ctx context.Context, dsn string, logger *zap.Logger) (*WhatsmeowProvider, error) {
	dbLog := waLog.Stdout("Database", "WARN", true)
	container, err := sqlstore.New(ctx, "postgres", dsn, dbLog)
	if err != nil {
		return nil, fmt.Errorf("failed to open device store: %w", err)
	}

	return &WhatsmeowProvider{
		container: container,
		clientLog: waLog.Stdout("WhatsApp", "WARN", true),
		logger:    logger,
	}, nil
}

// Start creates a fresh device for the instance, connects it and begins
// streaming QR/pairing events.
func (p *WhatsmeowProvider) Start(ctx context.Context, instanceName string) (Instance, error) {
	device := p.container.NewDevice()
	client := whatsmeow.NewClient(device, p.clientLog)

	inst := &whatsmeowInstance{
		name:   instanceName,
		client: client,
		events: make(chan Event, 64),
		logger: p.logger,
	}

	client.AddEventHandler(inst.handleEvent)

	// The QR channel must be requested before Connect, and with a background
	// context so the pairing websocket outlives the initiating HTTP request.
	qrChan, err := client.GetQRChannel(context.Background())
	if err == nil {
		go inst.forwardQR(qrChan)
	}

	go func() {
		if err := client.Connect(); err != nil {
			p.logger.Error("Provider connect failed",
				zap.String("instance", instanceName),
				zap.Error(err))
			inst.push(StatusChanged{State: StateClosed})
		}
	}()

	return inst, nil
}

type whatsmeowInstance struct {
	name   string
	client *whatsmeow.Client
	events chan Event
	logger *zap.Logger

	mu     sync.Mutex
	closed bool
}

func (i *whatsmeowInstance) Events() <-chan Event {
	return i.events
}

func (i *whatsmeowInstance) SendText(ctx context.Context, toPhone, text string) error {
	jid := types.NewJID(toPhone, types.DefaultUserServer)
	msg := &waProto.Message{Conversation: strptr(text)}

	if _, err := i.client.SendMessage(ctx, jid, msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (i *whatsmeowInstance) Close() error {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return nil
	}
	i.closed = true
	i.mu.Unlock()

	i.client.Disconnect()
	close(i.events)
	return nil
}

func (i *whatsmeowInstance) handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.PairSuccess:
		i.push(StatusChanged{State: StateConnecting})
	case *events.Connected:
		var phone string
		if i.client.Store != nil && i.client.Store.ID != nil {
			phone = i.client.Store.ID.User
		}
		i.push(StatusChanged{State: StateOpen, PhoneNumber: phone})
	case *events.Disconnected, *events.LoggedOut, *events.StreamReplaced:
		i.push(StatusChanged{State: StateClosed})
	case *events.Message:
		i.push(MessageReceived{
			From:     v.Info.Sender.User,
			Text:     extractText(v.Message),
			FromSelf: v.Info.IsFromMe,
		})
	}
}

func (i *whatsmeowInstance) forwardQR(qrChan <-chan whatsmeow.QRChannelItem) {
	for item := range qrChan {
		switch item.Event {
		case "code":
			i.push(QRIssued{Code: item.Code})
		case "success":
			// Scan accepted; authentication continues via PairSuccess.
		default:
			i.push(StatusChanged{State: StateClosed})
		}
	}
}

// push delivers an event without blocking whatsmeow's dispatch goroutine.
func (i *whatsmeowInstance) push(evt Event) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return
	}

	select {
	case i.events <- evt:
	default:
		i.logger.Warn("Provider event dropped, consumer too slow",
			zap.String("instance", i.name))
	}
}

func extractText(msg *waProto.Message) string {
	if msg == nil {
		return ""
	}
	if text := msg.GetConversation(); text != "" {
		return text
	}
	return msg.GetExtendedTextMessage().GetText()
}

func strptr(s string) *string { return &s }
