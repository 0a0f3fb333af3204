package usecase

import (
	"fmt"

	"github.com/Artem-be/HRTest/internal/domain"
)

// Логика диалога, независимая от Telegram

type Step string

const (
	StepIdle          Step = "idle"
	StepAwaitingName  Step = "awaiting_name"
	StepAwaitingPhone Step = "awaiting_phone"
)

const ServicesBtn = "Услуги"

// Service — пункт меню услуг. Label уходит на кнопку, Name сохраняется в заявке.
type Service struct {
	ID    string
	Name  string
	Label string
}

var Services = []Service{
	{ID: "bot_development", Name: "Разработка Telegram-ботов под ключ", Label: "Разработка Telegram-ботов под ключ"},
	{ID: "mini_apps", Name: "Создание Mini Apps", Label: "Создание Mini Apps (встроенных приложений в Telegram)"},
	{ID: "bot_support", Name: "Сопровождение и доработка ботов", Label: "Сопровождение и доработка ботов"},
	{ID: "consultation", Name: "Консультации и проектирование", Label: "Консультации и проектирование"},
}

const unknownService = "Неизвестная услуга"

// Session — состояние анкеты одного пользователя. Создается при первом
// обращении, очищается после завершения формы, иначе живет бессрочно.
type Session struct {
	Step    Step
	Name    string
	Service string
}

type Reply struct {
	Text         string
	ShowMainMenu bool // reply-клавиатура «Услуги»
	ShowServices bool // inline-клавиатура с услугами
	Action       string
	FunnelStep   FunnelStep
	Lead         *domain.Lead // заполнен, когда форма завершена
}

type Dialog struct{}

func NewDialog() *Dialog { return &Dialog{} }

// Start обрабатывает /start; состояние анкеты не трогает.
func (d *Dialog) Start(s *Session) Reply {
	return Reply{
		Text: "Привет! Это твой личный ассистент.\n" +
			"Я помогу тебе выбрать услугу и передам заявку нашей команде.\n" +
			"Нажми «Услуги», чтобы посмотреть, что мы предлагаем, или выбери действие из меню ниже.",
		ShowMainMenu: true,
		Action:       "start",
		FunnelStep:   FunnelStart,
	}
}

// SelectService — нажатие кнопки услуги. Срабатывает из любого состояния:
// услуга запоминается и анкета переходит к вводу имени. Неизвестный
// callback тоже проходит — как в исходном боте.
func (d *Dialog) SelectService(s *Session, serviceID string) Reply {
	name := unknownService
	for _, svc := range Services {
		if svc.ID == serviceID {
			name = svc.Name
			break
		}
	}
	s.Service = name
	s.Step = StepAwaitingName
	return Reply{
		Text:       "Отлично! Для оформления заявки введите ваше имя:",
		Action:     "selected_service_" + serviceID,
		FunnelStep: FunnelServiceSelected,
	}
}

// Handle — входящий текст. Имя и телефон не валидируются: принимается
// любой непустой текст, так ведет себя исходный бот.
func (d *Dialog) Handle(userID int64, s *Session, text string) Reply {
	switch s.Step {
	case StepAwaitingName:
		s.Name = text
		s.Step = StepAwaitingPhone
		return Reply{
			Text:       "Теперь введите ваш номер телефона:",
			Action:     "entered_name",
			FunnelStep: FunnelEnteredName,
		}

	case StepAwaitingPhone:
		lead := &domain.Lead{
			TgID:    userID,
			Name:    s.Name,
			Phone:   text,
			Service: s.Service,
		}
		*s = Session{Step: StepIdle}
		return Reply{
			Action:     "completed_form",
			FunnelStep: FunnelCompleted,
			Lead:       lead,
		}
	}

	if text == ServicesBtn {
		return Reply{
			Text:         servicesText,
			ShowServices: true,
			Action:       "viewed_services",
			FunnelStep:   FunnelServices,
		}
	}

	return Reply{
		Text:   fmt.Sprintf("Вы написали: %s", text),
		Action: "sent_message",
	}
}

// SubmitSuccessText — ответ пользователю после успешной доставки заявки.
func SubmitSuccessText(lead domain.Lead) string {
	return fmt.Sprintf("Спасибо, %s! Мы свяжемся с вами по номеру %s по поводу услуги: %s",
		lead.Name, lead.Phone, lead.Service)
}

// SubmitFailedText — ответ, когда все попытки доставки исчерпаны.
func SubmitFailedText() string {
	return "Произошла ошибка при сохранении заявки. Попробуйте позже или обратитесь к администратору."
}

const servicesText = "Вот наши услуги:\n\n" +
	"1️⃣Разработка Telegram-ботов под ключ\n" +
	"– Автоматизация заявок, рассылок, FAQ, квизов\n" +
	"– Воронки, формы, CRM-интеграции\n\n" +
	"2️⃣Создание Mini Apps (встроенных приложений в Telegram)\n" +
	"– Интерфейс с кнопками, формами, каталогами\n" +
	"– Подключение к API, базам данных, платёжным системам\n\n" +
	"3️⃣Сопровождение и доработка ботов\n" +
	"– Поддержка существующих решений\n" +
	"– Рефакторинг, добавление новых функций\n" +
	"– Оптимизация скорости\n\n" +
	"4️⃣Консультации и проектирование\n" +
	"– Поможем спроектировать логику бота от А до Я под вашу задачу\n" +
	"– Оценим сложность, сроки, подскажем лучшие практики\n\n" +
	"Выберите одну из услуг ниже, чтобы оставить заявку 👇"
