// Package server is a small HTTP preview of a generated dungeon.
//
// Routes:
//
//	GET /                    index page (templ) with the dungeon animation
//	GET /dungeon             dungeon JSON
//	GET /dungeon.msgpack     dungeon MessagePack
//	GET /dungeon.gif         one frame per floor
//	GET /floors/{id}         floor JSON
//	GET /floors/{id}/gif     floor image
//	GET /ws                  websocket floor stream
//
// The websocket sends every floor as a FloorMessage on connect, then answers
// each Request with the floor it names.
package server
