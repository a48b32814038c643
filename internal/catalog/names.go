package catalog

// Guest name corpora. Display names keep their accents; generated emails are
// folded to plain ASCII.

var firstNames = []string{
	"María", "José", "Antonio", "Ana", "Juan", "Carmen", "Francisco", "Isabel",
	"Manuel", "Dolores", "Pedro", "Rosa", "Miguel", "Pilar", "Carlos", "Teresa",
	"Luis", "Josefa", "Javier", "Lucia", "Rafael", "Elena", "Fernando", "Paula",
	"Daniel", "Laura", "Alejandro", "Cristina", "Pablo", "Marta", "David", "Sara",
	"Jorge", "Patricia", "Alberto", "Raquel", "Sergio", "Beatriz", "Andrés", "Silvia",
	"Diego", "Andrea", "Adrián", "Mónica", "Rubén", "Sandra", "Álvaro", "Natalia",
	"Víctor", "Irene", "Óscar", "Eva", "Roberto", "Alicia", "Enrique", "Clara",
	"Marcos", "Rocío", "Iván", "Marina", "Guillermo", "Diana", "Hugo", "Nuria",
}

var lastNames = []string{
	"García", "Rodríguez", "Martínez", "López", "González", "Hernández", "Pérez", "Sánchez",
	"Ramírez", "Torres", "Flores", "Rivera", "Gómez", "Díaz", "Reyes", "Morales",
	"Jiménez", "Ruiz", "Álvarez", "Romero", "Serrano", "Blanco", "Suárez", "Iglesias",
	"Medina", "Garrido", "Cortés", "Castillo", "Santos", "Guerrero", "Ortega", "Rubio",
	"Marín", "Sanz", "Núñez", "Castro", "Ibáñez", "Crespo", "Ortiz", "Muñoz",
	"Domínguez", "Vázquez", "Ramos", "Gil", "Molina", "Delgado", "Cabrera", "Moreno",
	"Pascual", "Herrero", "Aguilar", "Nieto", "Gallego", "León", "Prieto", "Méndez",
}

// MaxAttendees is the largest universe the corpora can produce.
func MaxAttendees() int {
	return len(firstNames) * len(lastNames)
}
