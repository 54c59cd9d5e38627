package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Mock device publisher: simulates a phone wandering around Lafayette, CA,
// drifting close to the Safeway geofence often enough to trigger reminders.

type positionMessage struct {
	DeviceID  string  `json:"device_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

const (
	storeLat = 37.8351
	storeLon = -122.1302
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds>\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}

	deviceID := "phone-demo"
	if v := os.Getenv("DEVICE_ID"); v != "" {
		deviceID = v
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("grabbit-mock-device")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	log.Printf("connected to %s, publishing as %s every %ds...", broker, deviceID, intervalSec)

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		var lat, lon float64
		// 40% chance to wander within ~100m of the store, otherwise
		// roam a few kilometers out.
		if rand.Float64() < 0.4 {
			lat = storeLat + (rand.Float64()-0.5)*0.001
			lon = storeLon + (rand.Float64()-0.5)*0.001
		} else {
			lat = storeLat + (rand.Float64()-0.5)*0.05
			lon = storeLon + (rand.Float64()-0.5)*0.05
		}

		msg := positionMessage{
			DeviceID:  deviceID,
			Latitude:  lat,
			Longitude: lon,
			Timestamp: time.Now().Unix(),
		}

		payload, _ := json.Marshal(msg)
		topic := fmt.Sprintf("/grabbit/device/%s/position", deviceID)

		token := client.Publish(topic, 1, false, payload)
		token.Wait()

		log.Printf("published to %s: %s", topic, payload)
	}
}
