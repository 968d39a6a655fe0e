package component

import "github.com/milk9111/climb/physics"

type Body = physics.Body

var BodyComponent = NewComponent[Body]()
