package server

// Server объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
type Server struct {
	QuestlineServer
	ItemServer
}

func NewServer(
	questlineServer QuestlineServer,
	itemServer ItemServer,
) Server {
	return Server{
		QuestlineServer: questlineServer,
		ItemServer:      itemServer,
	}
}
