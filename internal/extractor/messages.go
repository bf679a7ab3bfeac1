package extractor

import "caseview/internal/model"

const (
	smsMessageType  = "SMS/Native Message"
	chatMessageType = "CHAT Message"
	smsApplication  = "Native"
)

// classifyMessage routes native SMS to their own category; everything else
// is a chat message.
func classifyMessage(reg *model.Registry, f *Facet) {
	m := &model.Message{
		ID:               f.NodeID,
		Text:             f.String(observable("messageText"), ""),
		SentTime:         f.Time(observable("sentTime")),
		From:             model.NewRef(f.Ref(observable("from"))),
		To:               model.NewRefList(f.Refs(observable("to"))),
		AllocationStatus: f.String(observable("allocationStatus"), ""),
	}
	if f.String(observable("messageType"), "") == smsMessageType {
		m.MessageType = smsMessageType
		m.Application = model.FixedRef(smsApplication)
		reg.SMSMessages.Add(m)
		return
	}
	m.MessageType = chatMessageType
	m.Application = model.NewRef(f.Ref(observable("application")))
	reg.ChatMessages.Add(m)
}

func classifyThread(reg *model.Registry, f *Facet) {
	thread := f.Sub(observable("messageThread"))
	reg.Threads.Add(&model.Thread{
		ID:           f.NodeID,
		Participants: f.Refs(observable("participant")),
		Size:         thread.Integer("co:size", "-"),
		Messages:     thread.Refs("co:element"),
	})
}
