package ui

import (
	"context"
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"prototype-creator/ai"
	"prototype-creator/chatparse"
	"prototype-creator/i18n"
	"prototype-creator/model"
	"prototype-creator/utils"
)

// ChatView is the conversation screen. User messages go to the AI backend in
// the background; assistant replies are classified before rendering, so a
// generated-prototype link becomes a tappable card and a confirmation
// question grows a one-tap reply button.
type ChatView struct {
	app       *App
	sessionID string

	transcript *fyne.Container
	scroll     *container.Scroll
	input      *widget.Entry
	sendButton *widget.Button
	typing     *widget.Label
	content    *fyne.Container
}

// NewChatView builds the chat tab with a fresh session and the welcome
// message already in the transcript.
func NewChatView(app *App) *ChatView {
	v := &ChatView{
		app:       app,
		sessionID: app.chatStore.NewSession(),
	}

	v.transcript = container.NewVBox()
	v.scroll = container.NewVScroll(v.transcript)

	v.input = widget.NewMultiLineEntry()
	v.input.SetPlaceHolder(app.tr(i18n.ChatPlaceholder))
	v.input.Wrapping = fyne.TextWrapWord

	v.sendButton = widget.NewButton(app.tr(i18n.Send), func() {
		v.sendCurrentInput()
	})

	v.typing = widget.NewLabel(app.tr(i18n.Typing))
	v.typing.Hide()

	inputRow := container.NewBorder(nil, nil, nil, v.sendButton, v.input)
	v.content = container.NewBorder(nil, container.NewVBox(v.typing, inputRow), nil, nil, v.scroll)

	v.appendAssistantBubble(model.NewChatMessage(app.tr(i18n.WelcomeMessage), false))
	return v
}

// Content returns the root canvas object of the view.
func (v *ChatView) Content() fyne.CanvasObject {
	return v.content
}

func (v *ChatView) sendCurrentInput() {
	text := v.input.Text
	if len(text) == 0 {
		return
	}
	v.input.SetText("")
	v.send(text)
}

// send appends the user message and dispatches the conversation to the
// backend. The reply lands on the UI thread via fyne.Do.
func (v *ChatView) send(text string) {
	userMsg := model.NewChatMessage(text, true)
	v.app.chatStore.Append(v.sessionID, userMsg)
	v.appendUserBubble(userMsg)

	v.setBusy(true)

	utils.SafeGo(v.app.logger, "chat send", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		reply, err := v.app.aiService.SendMessage(ctx, v.app.chatStore.Messages(v.sessionID))

		fyne.Do(func() {
			v.setBusy(false)

			if err != nil {
				v.app.logger.Error("Chat send failed: %v", err)
				text := v.app.tr(i18n.ConnectionError)
				if errors.Is(err, ai.ErrEmptyResponse) {
					text = v.app.tr(i18n.EmptyReplyError)
				}
				errMsg := model.NewErrorMessage(text)
				v.app.chatStore.Append(v.sessionID, errMsg)
				v.appendErrorBubble(errMsg)
				return
			}

			reply = chatparse.CleanResponse(reply)
			assistantMsg := model.NewChatMessage(reply, false)
			v.app.chatStore.Append(v.sessionID, assistantMsg)
			v.appendAssistantBubble(assistantMsg)
		})
	})
}

func (v *ChatView) setBusy(busy bool) {
	if busy {
		v.typing.Show()
		v.sendButton.Disable()
	} else {
		v.typing.Hide()
		v.sendButton.Enable()
	}
}

func (v *ChatView) appendUserBubble(msg model.ChatMessage) {
	label := widget.NewLabel(msg.Content)
	label.Wrapping = fyne.TextWrapWord
	label.Alignment = fyne.TextAlignTrailing
	v.appendBubble(widget.NewCard("", "", label))
}

func (v *ChatView) appendErrorBubble(msg model.ChatMessage) {
	label := widget.NewLabel("⚠️ " + msg.Content)
	label.Wrapping = fyne.TextWrapWord
	v.appendBubble(widget.NewCard("", "", label))
}

// appendAssistantBubble renders an assistant reply. A prototype link wins
// over a confirmation question; plain text is the fallback.
func (v *ChatView) appendAssistantBubble(msg model.ChatMessage) {
	if link, ok := chatparse.FindPrototypeLink(msg.Content); ok {
		v.appendBubble(v.linkCard(link))
		return
	}

	if main, question, ok := chatparse.FindConfirmation(msg.Content); ok {
		v.appendBubble(v.confirmationCard(main, question))
		return
	}

	label := widget.NewLabel(msg.Content)
	label.Wrapping = fyne.TextWrapWord
	v.appendBubble(widget.NewCard("", "", label))
}

func (v *ChatView) linkCard(link chatparse.LinkMatch) fyne.CanvasObject {
	items := []fyne.CanvasObject{}

	if link.Before != "" {
		before := widget.NewLabel(link.Before)
		before.Wrapping = fyne.TextWrapWord
		items = append(items, before)
	}

	banner := widget.NewLabelWithStyle(v.app.tr(i18n.GeneratedBanner), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	id := link.PrototypeID
	open := widget.NewButton(v.app.tr(i18n.TapToView), func() {
		v.app.openPrototype(id)
	})
	items = append(items, banner, open)

	if link.After != "" {
		after := widget.NewLabel(link.After)
		after.Wrapping = fyne.TextWrapWord
		items = append(items, after)
	}

	return widget.NewCard("", "", container.NewVBox(items...))
}

func (v *ChatView) confirmationCard(main, question string) fyne.CanvasObject {
	items := []fyne.CanvasObject{}

	if main != "" {
		mainLabel := widget.NewLabel(main)
		mainLabel.Wrapping = fyne.TextWrapWord
		items = append(items, mainLabel)
	}

	questionLabel := widget.NewLabelWithStyle(question, fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	questionLabel.Wrapping = fyne.TextWrapWord

	confirm := widget.NewButton(v.app.tr(i18n.ConfirmButton), func() {
		v.send(chatparse.ConfirmReply)
	})
	items = append(items, questionLabel, confirm)

	return widget.NewCard("", "", container.NewVBox(items...))
}

func (v *ChatView) appendBubble(obj fyne.CanvasObject) {
	v.transcript.Add(obj)
	v.transcript.Refresh()
	v.scroll.ScrollToBottom()
}
