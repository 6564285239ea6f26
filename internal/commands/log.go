package commands

import "github.com/dudu/facescore/internal/event"

var log = event.Log
