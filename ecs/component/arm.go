package component

import "github.com/milk9111/climb/grapple"

type Arm = grapple.Arm

var ArmComponent = NewComponent[Arm]()
