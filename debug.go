package vkcontext

import "github.com/renderware/vkcontext/driver"

// debugMessageMarker prefixes every forwarded driver diagnostic so
// they can be told apart from the module's own log lines.
const debugMessageMarker = "[vulkan]"

// debugRouter forwards driver diagnostics to the logging collaborator
// at a matching severity. It is registered against the instance in
// debug configurations only.
type debugRouter struct {
	log driver.Logger
}

func (r *debugRouter) messengerOptions() driver.MessengerOptions {
	return driver.MessengerOptions{
		Severities: driver.SeverityInfo | driver.SeverityWarning | driver.SeverityError,
		Callback:   r.route,
	}
}

// route classifies the severity bits in fixed precedence order and
// forwards the message. It never aborts the triggering driver call.
func (r *debugRouter) route(severity driver.MessageSeverity, message string) bool {
	switch {
	case severity&driver.SeverityInfo != 0:
		r.log.Infof("%s %s", debugMessageMarker, message)
	case severity&driver.SeverityWarning != 0:
		r.log.Warnf("%s %s", debugMessageMarker, message)
	case severity&driver.SeverityError != 0:
		r.log.Errorf("%s %s", debugMessageMarker, message)
	default:
		r.log.Debugf("%s %s", debugMessageMarker, message)
	}
	return false
}
