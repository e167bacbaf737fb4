// Package sentiment implements sentiment acquisition and aggregation.
//
// The Classifier turns a chat message into a bounded score plus a short
// explanation by calling the text-generation provider and parsing its
// free-form reply. The Window keeps the rolling average of recent scores
// and emits a community-mood summary every few messages.
package sentiment
