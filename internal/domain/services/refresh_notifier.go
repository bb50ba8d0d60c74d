package services

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"pms-app-service/internal/infrastructure/config"
)

// TopicRefreshPrefix is the topic family carrying resource-invalidation
// events; collaborators (e.g. a calendar view) subscribe per property
const TopicRefreshPrefix = "pms/refresh/"

// RefreshMessage tells subscribers to invalidate their cached copy of a resource
type RefreshMessage struct {
	Resource   string `json:"resource"`
	PropertyID string `json:"property_id"`
	Timestamp  int64  `json:"timestamp"`
}

// InterfaceRefreshNotifier defines the refresh broadcast interface
type InterfaceRefreshNotifier interface {
	Connect() error
	Disconnect()
	NotifyResourceChanged(resource, propertyID string) error
}

// MQTTRefreshNotifier broadcasts resource-invalidation events over MQTT
type MQTTRefreshNotifier struct {
	Config *config.Config
	Client mqtt.Client

	connectedMutex sync.RWMutex
	isConnected    bool
	publishMutex   sync.Mutex
}

// NewMQTTRefreshNotifier creates a new MQTT refresh notifier
func NewMQTTRefreshNotifier(cfg *config.Config) InterfaceRefreshNotifier {
	notifier := &MQTTRefreshNotifier{Config: cfg}
	notifier.setupClient()
	return notifier
}

// setupClient configures the MQTT client options
func (n *MQTTRefreshNotifier) setupClient() {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(n.Config.MQTTBrokerURL)
	opts.SetClientID(n.Config.MQTTClientID)
	if n.Config.MQTTUsername != "" {
		opts.SetUsername(n.Config.MQTTUsername)
		opts.SetPassword(n.Config.MQTTPassword)
	}
	if n.Config.MQTTSSLEnabled {
		opts.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)

	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		config.Warning("[MQTT] connection lost: %v", err)
		n.setConnected(false)
	})
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		config.Info("[MQTT] connected to %s", n.Config.MQTTBrokerURL)
		n.setConnected(true)
	})

	n.Client = mqtt.NewClient(opts)
}

// 1 Connect establishes the broker connection
func (n *MQTTRefreshNotifier) Connect() error {
	token := n.Client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return fmt.Errorf("MQTT connect timed out")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("MQTT connect failed: %w", err)
	}
	n.setConnected(true)
	return nil
}

// 2 Disconnect closes the broker connection
func (n *MQTTRefreshNotifier) Disconnect() {
	n.Client.Disconnect(250)
	n.setConnected(false)
}

// 3 NotifyResourceChanged publishes an invalidation event for one
// resource of one property
func (n *MQTTRefreshNotifier) NotifyResourceChanged(resource, propertyID string) error {
	if !n.connected() {
		return fmt.Errorf("MQTT not connected")
	}

	message := RefreshMessage{
		Resource:   resource,
		PropertyID: propertyID,
		Timestamp:  time.Now().Unix(),
	}
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	n.publishMutex.Lock()
	defer n.publishMutex.Unlock()

	topic := TopicRefreshPrefix + propertyID
	token := n.Client.Publish(topic, byte(n.Config.MQTTQoS), n.Config.MQTTRetained, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("MQTT publish to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("MQTT publish to %s failed: %w", topic, err)
	}

	config.Info("[MQTT] published %s invalidation to %s", resource, topic)
	return nil
}

func (n *MQTTRefreshNotifier) connected() bool {
	n.connectedMutex.RLock()
	defer n.connectedMutex.RUnlock()
	return n.isConnected
}

func (n *MQTTRefreshNotifier) setConnected(connected bool) {
	n.connectedMutex.Lock()
	defer n.connectedMutex.Unlock()
	n.isConnected = connected
}

// NoopRefreshNotifier drops refresh events, used when no broker is
// configured and in tests
type NoopRefreshNotifier struct{}

// Connect is a no-op
func (NoopRefreshNotifier) Connect() error { return nil }

// Disconnect is a no-op
func (NoopRefreshNotifier) Disconnect() {}

// NotifyResourceChanged drops the event
func (NoopRefreshNotifier) NotifyResourceChanged(resource, propertyID string) error { return nil }
