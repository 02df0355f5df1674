package alerts

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"poshan-board/internal/config"
)

// Alert critical event pushed to supervising departments over MQTT.
// Only critical-urgency bed requests and hospital referrals go through this
// channel; everything else stays on the polled notification feed.
type Alert struct {
	Kind      string `json:"kind"` // "bed_request" | "referral"
	EntityID  string `json:"entityId"`
	PatientID string `json:"patientId,omitempty"`
	Urgency   string `json:"urgency"`
	Message   string `json:"message"`
	RaisedAt  string `json:"raisedAt"`
}

// Publisher fans alerts out to an MQTT broker. Disabled deployments use
// NopPublisher instead.
type Publisher interface {
	Publish(alert Alert) error
	Close()
}

type mqttPublisher struct {
	client mqtt.Client
	topic  string
	logger *zap.Logger
}

// NewPublisher connects to the broker from config. Call only when
// cfg.Enabled is true.
func NewPublisher(cfg *config.MQTTConfig, logger *zap.Logger) (Publisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &mqttPublisher{client: client, topic: cfg.Topic, logger: logger}, nil
}

func (p *mqttPublisher) Publish(alert Alert) error {
	if alert.RaisedAt == "" {
		alert.RaisedAt = time.Now().Format(time.RFC3339)
	}
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to encode alert: %w", err)
	}

	token := p.client.Publish(p.topic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish alert to topic %s: %w", p.topic, token.Error())
	}

	p.logger.Info("Alert published",
		zap.String("topic", p.topic),
		zap.String("kind", alert.Kind),
		zap.String("entity_id", alert.EntityID),
	)
	return nil
}

func (p *mqttPublisher) Close() {
	p.client.Disconnect(250)
}

// NopPublisher used when MQTT is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(Alert) error { return nil }
func (NopPublisher) Close()              {}
