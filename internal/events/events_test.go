package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
)

func startTestNATS(t *testing.T) string {
	t.Helper()
	opts := &natsserver.Options{Host: "127.0.0.1", Port: -1}
	srv, err := natsserver.NewServer(opts)
	if err != nil {
		t.Fatalf("starting embedded NATS: %v", err)
	}
	srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS not ready")
	}
	return srv.ClientURL()
}

func TestNoopPublisher(t *testing.T) {
	pub := &NoopPublisher{}
	if err := pub.Publish(context.Background(), TopicContactCreated, RecordChanged{}); err != nil {
		t.Fatalf("NoopPublisher.Publish: %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("NoopPublisher.Close: %v", err)
	}
}

func TestPublisherImplementations(t *testing.T) {
	var _ Publisher = (*NoopPublisher)(nil)
	var _ Publisher = (*NATSPublisher)(nil)
}

func TestSubscriberReceivesRecordChange(t *testing.T) {
	url := startTestNATS(t)

	pub, err := NewNATSPublisher(url)
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	sub, err := NewNATSSubscriber(url)
	if err != nil {
		t.Fatalf("creating subscriber: %v", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe(TopicContactUpdated)
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	defer cancel()

	event := RecordChanged{Resource: "contacts", ID: "c1", Action: "updated"}
	if err := pub.Publish(context.Background(), TopicContactUpdated, event); err != nil {
		t.Fatalf("publishing: %v", err)
	}

	select {
	case data := <-ch:
		var got RecordChanged
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.ID != "c1" || got.Action != "updated" {
			t.Errorf("got %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestSubscriberWildcardSpansResources(t *testing.T) {
	url := startTestNATS(t)

	pub, err := NewNATSPublisher(url)
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	sub, err := NewNATSSubscriber(url)
	if err != nil {
		t.Fatalf("creating subscriber: %v", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe("crm.>")
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	defer cancel()

	topics := []string{TopicContactCreated, TopicCompanyDeleted, TopicJobUpdated}
	for _, topic := range topics {
		if err := pub.Publish(context.Background(), topic, RecordChanged{ID: topic}); err != nil {
			t.Fatalf("publishing %s: %v", topic, err)
		}
	}

	received := 0
	deadline := time.After(2 * time.Second)
	for received < len(topics) {
		select {
		case <-ch:
			received++
		case <-deadline:
			t.Fatalf("received %d of %d events before timeout", received, len(topics))
		}
	}
}

func TestSubscribeCancelClosesChannel(t *testing.T) {
	url := startTestNATS(t)

	sub, err := NewNATSSubscriber(url)
	if err != nil {
		t.Fatalf("creating subscriber: %v", err)
	}
	defer sub.Close()

	ch, cancel, err := sub.Subscribe(TopicContactCreated)
	if err != nil {
		t.Fatalf("subscribing: %v", err)
	}
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected a closed channel after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
