// Package coloring infers and applies the display color of classes from
// their stereotypes and their place in the generalization hierarchy.
//
// # Resolution
//
// Each stereotype of a class is processed in order and the last one wins:
//
//   - kind-level stereotypes, type, event, enumeration and datatype paint
//     their fixed palette color;
//   - non-sortals (category, mixin, roleMixin, phaseMixin) take the derived
//     shade of the first subclass drawn with a recognized color;
//   - everything else, including subkind, role and phase, takes the derived
//     shade of the first superclass drawn with a recognized color.
//
// When no neighbor carries a recognized color the class is painted with the
// non-sortal gray. Neighbors are scanned in generalization declaration order
// and, per neighbor, shapes in host order; the first match wins.
//
// # Passes
//
// [Engine.RepaintProject] runs exactly two passes over every class. Colors
// inherited through a chain only travel one generalization per pass, so
// hierarchies deeper than the pass count may keep the non-sortal default
// until the next repaint.
package coloring
